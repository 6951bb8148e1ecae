/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package knowledge

// Corpus returns the built-in snippets without vectors.
func Corpus() []Item {
	out := make([]Item, 0, len(biomarkerCorpus)+len(nutritionCorpus))
	out = append(out, biomarkerCorpus...)
	out = append(out, nutritionCorpus...)

	return out
}

var biomarkerCorpus = []Item{
	{ID: "hba1c_definition", Namespace: NamespaceBiomarkers, Category: "definition",
		Text: "HbA1c (Hemoglobin A1c) measures average blood sugar levels over the past 2-3 months. Normal range is 4.0-5.6%. Values between 5.7-6.4% indicate prediabetes. Values above 6.5% indicate diabetes. Higher HbA1c increases risk of diabetes complications."},
	{ID: "hba1c_high_causes", Namespace: NamespaceBiomarkers, Category: "causes",
		Text: "High HbA1c causes include: uncontrolled diabetes, insulin resistance, poor diet high in refined sugars, lack of physical activity, certain medications, stress, illness, and genetic factors. Chronic high blood sugar damages blood vessels and organs."},
	{ID: "hdl_definition", Namespace: NamespaceBiomarkers, Category: "definition",
		Text: "HDL (High-Density Lipoprotein) is known as \"good cholesterol\" because it helps remove LDL cholesterol from arteries. Higher HDL levels are better. Normal ranges: Men >40 mg/dL, Women >50 mg/dL. HDL protects against heart disease."},
	{ID: "hdl_low_causes", Namespace: NamespaceBiomarkers, Category: "causes",
		Text: "Low HDL causes include: sedentary lifestyle, smoking, obesity, type 2 diabetes, genetic factors, certain medications (beta-blockers, anabolic steroids), and diets high in trans fats and refined carbohydrates."},
	{ID: "ldl_definition", Namespace: NamespaceBiomarkers, Category: "definition",
		Text: "LDL (Low-Density Lipoprotein) is \"bad cholesterol\" that can build up in artery walls, forming plaques. Optimal LDL is below 100 mg/dL. Values 100-129 mg/dL are near optimal. Values above 130 mg/dL increase cardiovascular risk."},
	{ID: "ldl_high_causes", Namespace: NamespaceBiomarkers, Category: "causes",
		Text: "High LDL causes include: diet high in saturated and trans fats, lack of exercise, obesity, genetic factors (familial hypercholesterolemia), diabetes, hypothyroidism, kidney disease, and certain medications."},
	{ID: "glucose_definition", Namespace: NamespaceBiomarkers, Category: "definition",
		Text: "Glucose measures blood sugar at the time of test. Normal fasting glucose is 70-100 mg/dL. Values 100-125 mg/dL indicate prediabetes. Values above 126 mg/dL indicate diabetes. High glucose can cause immediate symptoms and long-term complications."},
	{ID: "glucose_high_causes", Namespace: NamespaceBiomarkers, Category: "causes",
		Text: "High glucose causes include: diabetes (type 1 or 2), stress, illness, medications (steroids, diuretics), pancreatic disorders, hormonal imbalances, excessive carbohydrate intake, and lack of physical activity."},
	{ID: "creatinine_definition", Namespace: NamespaceBiomarkers, Category: "definition",
		Text: "Creatinine measures kidney function. Normal ranges vary by age, gender, and muscle mass. Typical ranges: Men 0.7-1.3 mg/dL, Women 0.6-1.1 mg/dL. High creatinine indicates reduced kidney function or kidney disease."},
	{ID: "creatinine_high_causes", Namespace: NamespaceBiomarkers, Category: "causes",
		Text: "High creatinine causes include: kidney disease, dehydration, high protein diet, muscle breakdown, certain medications (NSAIDs, ACE inhibitors), urinary tract obstruction, and reduced blood flow to kidneys."},
	{ID: "triglycerides_definition", Namespace: NamespaceBiomarkers, Category: "definition",
		Text: "Triglycerides are a type of fat in blood. Normal levels are below 150 mg/dL. Values 150-199 mg/dL are borderline high. Values above 200 mg/dL are high and increase cardiovascular risk."},
	{ID: "triglycerides_high_causes", Namespace: NamespaceBiomarkers, Category: "causes",
		Text: "High triglycerides causes include: excessive calorie intake, high sugar and refined carbohydrate consumption, alcohol abuse, obesity, diabetes, hypothyroidism, kidney disease, and genetic factors."},
	{ID: "hemoglobin_definition", Namespace: NamespaceBiomarkers, Category: "definition",
		Text: "Hemoglobin carries oxygen in red blood cells. Normal ranges: Men 13.5-17.5 g/dL, Women 12.0-15.5 g/dL. Low hemoglobin indicates anemia. High hemoglobin can indicate dehydration or polycythemia."},
	{ID: "hemoglobin_low_causes", Namespace: NamespaceBiomarkers, Category: "causes",
		Text: "Low hemoglobin (anemia) causes include: iron deficiency, vitamin B12 or folate deficiency, chronic blood loss, chronic disease, bone marrow disorders, kidney disease, and genetic conditions like sickle cell anemia."},
	{ID: "vitamin_d_definition", Namespace: NamespaceBiomarkers, Category: "definition",
		Text: "Vitamin D is essential for bone health and immune function. Normal levels are 30-100 ng/mL. Levels below 20 ng/mL indicate deficiency. Vitamin D deficiency is common and linked to bone disorders and immune dysfunction."},
	{ID: "vitamin_d_low_causes", Namespace: NamespaceBiomarkers, Category: "causes",
		Text: "Low vitamin D causes include: limited sun exposure, dark skin, older age, obesity, malabsorption disorders, kidney or liver disease, certain medications, and inadequate dietary intake of vitamin D rich foods."},
}

var nutritionCorpus = []Item{
	{ID: "hba1c_lower_diet", Namespace: NamespaceNutrition, Category: "diet",
		Text: "To lower HbA1c: Focus on low-glycemic foods like whole grains, vegetables, legumes, and lean proteins. Avoid refined sugars, white bread, and processed foods. Include fiber-rich foods, maintain regular meal timing, and control portion sizes. Regular exercise is essential."},
	{ID: "hdl_raise_diet", Namespace: NamespaceNutrition, Category: "diet",
		Text: "To raise HDL: Include healthy fats from olive oil, avocados, nuts, and fatty fish. Eat omega-3 rich foods like salmon and walnuts. Moderate alcohol consumption may help (if appropriate). Regular aerobic exercise significantly raises HDL levels."},
	{ID: "ldl_lower_diet", Namespace: NamespaceNutrition, Category: "diet",
		Text: "To lower LDL: Reduce saturated fats (red meat, full-fat dairy) and eliminate trans fats. Increase soluble fiber from oats, beans, apples, and barley. Include plant sterols, nuts, and fatty fish. Limit processed foods and maintain healthy weight."},
	{ID: "glucose_control_diet", Namespace: NamespaceNutrition, Category: "diet",
		Text: "To control glucose: Eat balanced meals with protein, healthy fats, and complex carbs. Avoid sugary drinks and refined carbohydrates. Include fiber, maintain regular meal timing, and practice portion control. Combine with regular physical activity."},
	{ID: "creatinine_kidney_diet", Namespace: NamespaceNutrition, Category: "diet",
		Text: "For high creatinine/kidney health: Stay well-hydrated with water. Reduce protein intake if advised by doctor. Limit sodium and processed foods. Avoid nephrotoxic substances. Include antioxidant-rich fruits and vegetables. Consult nephrologist for personalized plan."},
	{ID: "triglycerides_lower_diet", Namespace: NamespaceNutrition, Category: "diet",
		Text: "To lower triglycerides: Reduce sugar and refined carbohydrates. Limit alcohol consumption. Include omega-3 fatty acids from fish. Eat whole grains, vegetables, and lean proteins. Maintain healthy weight and exercise regularly."},
	{ID: "anemia_iron_diet", Namespace: NamespaceNutrition, Category: "diet",
		Text: "For low hemoglobin/iron deficiency: Include iron-rich foods like lean red meat, poultry, fish, beans, lentils, spinach, and fortified cereals. Pair with vitamin C sources to enhance absorption. Avoid tea/coffee with iron-rich meals. Consider iron supplements if advised."},
	{ID: "vitamin_d_increase", Namespace: NamespaceNutrition, Category: "diet",
		Text: "To increase vitamin D: Get moderate sun exposure (10-30 minutes daily). Include fatty fish (salmon, mackerel), egg yolks, fortified dairy products, and mushrooms. Consider vitamin D supplements, especially in winter months or if deficient."},
	{ID: "general_heart_health", Namespace: NamespaceNutrition, Category: "lifestyle",
		Text: "Heart-healthy lifestyle: Follow Mediterranean or DASH diet. Exercise 150 minutes per week. Maintain healthy weight. Don't smoke. Manage stress. Get adequate sleep. Limit alcohol. Monitor blood pressure and cholesterol regularly."},
	{ID: "diabetes_management", Namespace: NamespaceNutrition, Category: "lifestyle",
		Text: "Diabetes management: Monitor blood sugar regularly. Follow carbohydrate counting or meal planning. Exercise regularly. Take medications as prescribed. Regular check-ups with healthcare team. Foot care and eye exams. Stress management and adequate sleep."},
}
